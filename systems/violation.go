package systems

import (
	"fmt"

	"go.uber.org/zap"
)

// violation handles a broken caller contract. With assertions enabled it
// panics so the bug surfaces in development; otherwise it logs and the caller
// returns without changing state.
func (p *Physics) violation(err error, fields ...zap.Field) {
	if p.cfg.Flags.Assertions {
		panic(fmt.Sprintf("contract violation: %v", err))
	}
	p.log.Warn("contract violation", append(fields, zap.Error(err))...)
}
