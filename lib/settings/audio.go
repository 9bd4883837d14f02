package settings

// Audio device and level preferences.

// InDev is the capture device name; "" selects the system default.
func (s *Settings) InDev() string {
	var v string
	s.run(func() { v = s.global.inDev })
	return v
}

func (s *Settings) SetInDev(deviceSpecifier string) {
	s.run(func() { setScalar(s, FieldInDev, &s.global.inDev, deviceSpecifier) })
}

func (s *Settings) AudioInDevEnabled() bool {
	var v bool
	s.run(func() { v = s.global.audioInDevEnabled })
	return v
}

func (s *Settings) SetAudioInDevEnabled(enabled bool) {
	s.run(func() { setScalar(s, FieldAudioInDevEnabled, &s.global.audioInDevEnabled, enabled) })
}

// OutDev is the playback device name; "" selects the system default.
func (s *Settings) OutDev() string {
	var v string
	s.run(func() { v = s.global.outDev })
	return v
}

func (s *Settings) SetOutDev(deviceSpecifier string) {
	s.run(func() { setScalar(s, FieldOutDev, &s.global.outDev, deviceSpecifier) })
}

func (s *Settings) AudioOutDevEnabled() bool {
	var v bool
	s.run(func() { v = s.global.audioOutDevEnabled })
	return v
}

func (s *Settings) SetAudioOutDevEnabled(enabled bool) {
	s.run(func() { setScalar(s, FieldAudioOutEnabled, &s.global.audioOutDevEnabled, enabled) })
}

// AudioInGainDecibel is the capture gain in dB.
func (s *Settings) AudioInGainDecibel() float64 {
	var v float64
	s.run(func() { v = s.global.audioInGainDecibel })
	return v
}

func (s *Settings) SetAudioInGainDecibel(dB float64) {
	s.run(func() { setScalar(s, FieldAudioInGain, &s.global.audioInGainDecibel, dB) })
}

// AudioThreshold is the voice activation threshold in percent.
func (s *Settings) AudioThreshold() float64 {
	var v float64
	s.run(func() { v = s.global.audioThreshold })
	return v
}

func (s *Settings) SetAudioThreshold(percent float64) {
	s.run(func() { setScalar(s, FieldAudioThreshold, &s.global.audioThreshold, percent) })
}

// OutVolume is the playback volume, 0 to 100.
func (s *Settings) OutVolume() int {
	var v int
	s.run(func() { v = s.global.outVolume })
	return v
}

func (s *Settings) SetOutVolume(volume int) {
	s.run(func() { setScalar(s, FieldOutVolume, &s.global.outVolume, volume) })
}

func (s *Settings) EnableTestSound() bool {
	var v bool
	s.run(func() { v = s.global.enableTestSound })
	return v
}

func (s *Settings) SetEnableTestSound(newValue bool) {
	s.run(func() { setScalar(s, FieldEnableTestSound, &s.global.enableTestSound, newValue) })
}

// AudioBitrate is the call audio bitrate in kbit/s.
func (s *Settings) AudioBitrate() int {
	var v int
	s.run(func() { v = s.global.audioBitrate })
	return v
}

func (s *Settings) SetAudioBitrate(bitrate int) {
	s.run(func() { setScalar(s, FieldAudioBitrate, &s.global.audioBitrate, bitrate) })
}

// EnableBackend2 selects the experimental audio backend.
func (s *Settings) EnableBackend2() bool {
	var v bool
	s.run(func() { v = s.global.enableBackend2 })
	return v
}

func (s *Settings) SetEnableBackend2(enabled bool) {
	s.run(func() { setScalar(s, FieldEnableBackend2, &s.global.enableBackend2, enabled) })
}
