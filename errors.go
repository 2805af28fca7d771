package xelicon

import "github.com/A1-Triard/xelicon/domain/value"

// ErrOom is the error this module returns for capacity and overflow
// failures; see errors.Is(err, ErrOom). The sentinel itself lives in domain/value so every
// layer of the domain can return and wrap it without importing this
// top-level package.
var ErrOom = value.ErrOom

// MaxPos is the largest byte index or column value any counter in this
// module may hold.
const MaxPos = value.MaxPos
