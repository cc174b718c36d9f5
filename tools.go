//go:build tools

package pda

import (
	_ "github.com/dmarkham/enumer"
)
