package core

import "github.com/dkeye/Roombox/internal/domain"

// SessionID identifies one live signal connection.
type SessionID = domain.SessionID
