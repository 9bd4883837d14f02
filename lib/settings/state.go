package settings

import (
	"bytes"
)

// Window-state blobs. Opaque to the store; the UI serializes geometry and
// splitter state into them. Setters compare but do not notify, matching the
// write-on-drag usage. Both directions copy, so neither the caller nor the
// store can mutate the other's slice.

func cloneBytes(b []byte) []byte {
	return append([]byte(nil), b...)
}

// setBlob is the compare-and-set helper for the opaque state blobs.
func (s *Settings) setBlob(dst *[]byte, v []byte) {
	if !s.loaded || bytes.Equal(*dst, v) {
		return
	}
	*dst = cloneBytes(v)
}

func (s *Settings) WindowGeometry() []byte {
	var v []byte
	s.run(func() { v = cloneBytes(s.global.windowGeometry) })
	return v
}

func (s *Settings) SetWindowGeometry(value []byte) {
	s.run(func() { s.setBlob(&s.global.windowGeometry, value) })
}

func (s *Settings) WindowState() []byte {
	var v []byte
	s.run(func() { v = cloneBytes(s.global.windowState) })
	return v
}

func (s *Settings) SetWindowState(value []byte) {
	s.run(func() { s.setBlob(&s.global.windowState, value) })
}

func (s *Settings) SplitterState() []byte {
	var v []byte
	s.run(func() { v = cloneBytes(s.global.splitterState) })
	return v
}

func (s *Settings) SetSplitterState(value []byte) {
	s.run(func() { s.setBlob(&s.global.splitterState, value) })
}

func (s *Settings) DialogGeometry() []byte {
	var v []byte
	s.run(func() { v = cloneBytes(s.global.dialogGeometry) })
	return v
}

func (s *Settings) SetDialogGeometry(value []byte) {
	s.run(func() { s.setBlob(&s.global.dialogGeometry, value) })
}

func (s *Settings) DialogSplitterState() []byte {
	var v []byte
	s.run(func() { v = cloneBytes(s.global.dialogSplitterState) })
	return v
}

func (s *Settings) SetDialogSplitterState(value []byte) {
	s.run(func() { s.setBlob(&s.global.dialogSplitterState, value) })
}

func (s *Settings) DialogSettingsGeometry() []byte {
	var v []byte
	s.run(func() { v = cloneBytes(s.global.dialogSettingsGeometry) })
	return v
}

func (s *Settings) SetDialogSettingsGeometry(value []byte) {
	s.run(func() { s.setBlob(&s.global.dialogSettingsGeometry, value) })
}
