package domain

import (
	"fmt"
	"strings"
)

// LockPolicy decides whether deposits still post to a locked account.
type LockPolicy uint8

const (
	// LockRejectAll rejects every transaction on a locked account.
	LockRejectAll LockPolicy = iota
	// LockAcceptDeposits lets deposits credit a locked account, since money
	// sent by bank transfer still arrives after locking. Withdrawals and the
	// dispute lifecycle stay rejected.
	LockAcceptDeposits
)

func (p LockPolicy) String() string {
	switch p {
	case LockRejectAll:
		return "reject"
	case LockAcceptDeposits:
		return "accept"
	default:
		return fmt.Sprintf("LockPolicy(%d)", uint8(p))
	}
}

// ParseLockPolicy parses "reject" or "accept".
func ParseLockPolicy(s string) (LockPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return LockRejectAll, nil
	case "accept":
		return LockAcceptDeposits, nil
	default:
		return LockRejectAll, fmt.Errorf("unknown locked deposit policy %q: want reject or accept", s)
	}
}

// Permits reports whether a transfer of the given kind may post to a locked account.
func (p LockPolicy) Permits(kind TransferKind) bool {
	return p == LockAcceptDeposits && kind == Deposit
}
