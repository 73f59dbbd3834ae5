package payment

// Status tracks a single gateway order through its lifecycle.
type Status string

const (
	StatusCreated           Status = "created"
	StatusPaid              Status = "paid"
	StatusSignatureMismatch Status = "signature_mismatch"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusPaid, StatusSignatureMismatch:
		return true
	default:
		return false
	}
}

// TransferStatus records the outcome of routing funds to the space owner.
// It is informational: a failed transfer never blocks settlement.
type TransferStatus string

const (
	TransferStatusTransferred       TransferStatus = "transferred"
	TransferStatusOwnerNotOnboarded TransferStatus = "owner_not_onboarded"
	TransferStatusFailed            TransferStatus = "transfer_failed"
)

func (s TransferStatus) String() string {
	return string(s)
}

func (s TransferStatus) IsValid() bool {
	switch s {
	case TransferStatusTransferred, TransferStatusOwnerNotOnboarded, TransferStatusFailed:
		return true
	default:
		return false
	}
}
