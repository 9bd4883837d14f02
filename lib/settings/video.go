package settings

// Video capture preferences.

// VideoDev is the camera device name; "" selects the system default.
func (s *Settings) VideoDev() string {
	var v string
	s.run(func() { v = s.global.videoDev })
	return v
}

func (s *Settings) SetVideoDev(deviceSpecifier string) {
	s.run(func() { setScalar(s, FieldVideoDev, &s.global.videoDev, deviceSpecifier) })
}

// CamVideoRes is the preferred camera resolution.
func (s *Settings) CamVideoRes() Rect {
	var v Rect
	s.run(func() { v = s.global.camVideoRes })
	return v
}

func (s *Settings) SetCamVideoRes(newValue Rect) {
	s.run(func() { setScalar(s, FieldCamVideoRes, &s.global.camVideoRes, newValue) })
}

// ScreenRegion is the region captured when sharing the screen.
func (s *Settings) ScreenRegion() Rect {
	var v Rect
	s.run(func() { v = s.global.screenRegion })
	return v
}

func (s *Settings) SetScreenRegion(value Rect) {
	s.run(func() { setScalar(s, FieldScreenRegion, &s.global.screenRegion, value) })
}

// ScreenGrabbed reports whether the screen, rather than a camera, is the
// video source.
func (s *Settings) ScreenGrabbed() bool {
	var v bool
	s.run(func() { v = s.global.screenGrabbed })
	return v
}

func (s *Settings) SetScreenGrabbed(value bool) {
	s.run(func() { setScalar(s, FieldScreenGrabbed, &s.global.screenGrabbed, value) })
}

// CamVideoFPS is the camera frame rate cap; 0 leaves it to the device.
func (s *Settings) CamVideoFPS() uint16 {
	var v uint16
	s.run(func() { v = s.global.camVideoFPS })
	return v
}

func (s *Settings) SetCamVideoFPS(newValue uint16) {
	s.run(func() { setScalar(s, FieldCamVideoFPS, &s.global.camVideoFPS, newValue) })
}
