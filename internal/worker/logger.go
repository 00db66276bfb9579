package worker

import "dealradar/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault
