package cache

import "dealradar/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault
