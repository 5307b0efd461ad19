package p2p

import "github.com/bitcoin-sv/lnbridge/internal/logger"

const slogLvlTrace = logger.LevelTrace
