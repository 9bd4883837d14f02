package util

import (
	"github.com/go-tox/toxsettings/lib/util/logger"
)

var log = logger.GetLogger()
