package connectors

import "dealradar/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault
