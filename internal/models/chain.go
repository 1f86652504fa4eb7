package models

// Chain confirmation levels considered terminal by the reconciler.
const (
	ConfirmationConfirmed = "confirmed"
	ConfirmationFinalized = "finalized"
)

// SignatureStatus is the observed chain state of one submitted signature.
// Found=false means the node does not know the signature (yet).
type SignatureStatus struct {
	Signature          string
	Found              bool
	HasError           bool
	ErrorMessage       string
	ConfirmationStatus string
}

// Terminal reports whether the confirmation level is final on chain.
func (s SignatureStatus) Terminal() bool {
	return s.Found &&
		(s.ConfirmationStatus == ConfirmationConfirmed || s.ConfirmationStatus == ConfirmationFinalized)
}
