package settings

// Personal-tier proxy preferences.

func (s *Settings) ProxyType() ProxyType {
	var v ProxyType
	s.run(func() { v = s.personal.proxyType })
	return v
}

// SetProxyType stores the proxy mode; out-of-range values are repaired to
// ProxyNone.
func (s *Settings) SetProxyType(newValue ProxyType) {
	s.run(func() { setScalar(s, FieldProxyType, &s.personal.proxyType, fixInvalidProxyType(newValue)) })
}

func (s *Settings) ProxyAddr() string {
	var v string
	s.run(func() { v = s.personal.proxyAddr })
	return v
}

func (s *Settings) SetProxyAddr(newValue string) {
	s.run(func() { setScalar(s, FieldProxyAddr, &s.personal.proxyAddr, newValue) })
}

func (s *Settings) ProxyPort() uint16 {
	var v uint16
	s.run(func() { v = s.personal.proxyPort })
	return v
}

func (s *Settings) SetProxyPort(newValue uint16) {
	s.run(func() { setScalar(s, FieldProxyPort, &s.personal.proxyPort, newValue) })
}
