package errcode

import "fmt"

// Kind classifies an error for the API layer: it decides the HTTP status
// and whether the caller may retry without changing the request.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuthorization
	KindStateConflict
	KindExternal
	KindUnexpected
)

// Err is a coded business error. Instances are compared by code, so the
// predefined values below can be matched with errors.Is / errcode.Is after
// being wrapped with pkg/errors.
type Err struct {
	code int
	kind Kind
	msg  string
}

func NewErr(code int, kind Kind, msg string) *Err {
	return &Err{code: code, kind: kind, msg: msg}
}

// NewCustomErr builds an ad-hoc unexpected error for one-off messages.
func NewCustomErr(msg string) *Err {
	return &Err{code: CodeCustom, kind: KindUnexpected, msg: msg}
}

func (e *Err) Error() string { return fmt.Sprintf("[%d] %s", e.code, e.msg) }
func (e *Err) Code() int     { return e.code }
func (e *Err) Kind() Kind    { return e.kind }
func (e *Err) Msg() string   { return e.msg }

// Is matches by code so wrapped copies still compare equal.
func (e *Err) Is(target error) bool {
	t, ok := target.(*Err)
	return ok && t.code == e.code
}

// Retryable reports whether resubmitting the same request can ever succeed.
// State conflicts can clear (a listing may be re-created) and external
// failures can be transient; validation and authorization failures cannot.
func (e *Err) Retryable() bool {
	return e.kind == KindStateConflict || e.kind == KindExternal
}

const (
	CodeCustom = 50001

	codeInvalidParams            = 40001
	codeInvalidPrice             = 40002
	codeInvalidQuantity          = 40003
	codeInvalidMetadata          = 40004
	codeInvalidRoyaltyPercentage = 40005
	codeInvalidMaxSupply         = 40006
	codeLengthMismatch           = 40007

	codeNotTokenOwner      = 40101
	codeNotApproved        = 40102
	codeUnauthorizedAccess = 40103
	codeNotContractOwner   = 40104

	codeListingNotActive      = 40901
	codeListingActive         = 40902
	codeSupplyExceeded        = 40903
	codeInsufficientPayment   = 40904
	codeSaleNotActive         = 40905
	codeWalletCapExceeded     = 40906
	codeReserveExceeded       = 40907
	codeNonexistentToken      = 40908
	codeNonexistentCollection = 40909
	codeInsufficientFunds     = 40910
	codeReentrantCall         = 40911

	codeExternalCallFailed = 50201
	codeUnexpected         = 50000
)

var (
	ErrInvalidParams            = NewErr(codeInvalidParams, KindValidation, "invalid params")
	ErrInvalidPrice             = NewErr(codeInvalidPrice, KindValidation, "price must be positive")
	ErrInvalidQuantity          = NewErr(codeInvalidQuantity, KindValidation, "quantity must be positive")
	ErrInvalidMetadata          = NewErr(codeInvalidMetadata, KindValidation, "metadata reference must not be empty")
	ErrInvalidRoyaltyPercentage = NewErr(codeInvalidRoyaltyPercentage, KindValidation, "royalty rate above 1000 bps")
	ErrInvalidMaxSupply         = NewErr(codeInvalidMaxSupply, KindValidation, "max supply must be positive")
	ErrLengthMismatch           = NewErr(codeLengthMismatch, KindValidation, "array lengths do not match")

	ErrNotTokenOwner      = NewErr(codeNotTokenOwner, KindAuthorization, "caller is not the token owner")
	ErrNotApproved        = NewErr(codeNotApproved, KindAuthorization, "marketplace is not approved for this token")
	ErrUnauthorizedAccess = NewErr(codeUnauthorizedAccess, KindAuthorization, "caller is not authorized")
	ErrNotContractOwner   = NewErr(codeNotContractOwner, KindAuthorization, "caller is not the collection owner")

	ErrListingNotActive      = NewErr(codeListingNotActive, KindStateConflict, "listing is not active")
	ErrListingActive         = NewErr(codeListingActive, KindStateConflict, "listing is still active")
	ErrSupplyExceeded        = NewErr(codeSupplyExceeded, KindStateConflict, "max supply exceeded")
	ErrInsufficientPayment   = NewErr(codeInsufficientPayment, KindStateConflict, "payment does not cover the price")
	ErrSaleNotActive         = NewErr(codeSaleNotActive, KindStateConflict, "public sale is not active")
	ErrWalletCapExceeded     = NewErr(codeWalletCapExceeded, KindStateConflict, "per-wallet mint cap exceeded")
	ErrReserveExceeded       = NewErr(codeReserveExceeded, KindStateConflict, "owner reserve exhausted")
	ErrNonexistentToken      = NewErr(codeNonexistentToken, KindStateConflict, "token does not exist")
	ErrNonexistentCollection = NewErr(codeNonexistentCollection, KindStateConflict, "collection does not exist")
	ErrInsufficientFunds     = NewErr(codeInsufficientFunds, KindStateConflict, "insufficient account balance")
	ErrReentrantCall         = NewErr(codeReentrantCall, KindStateConflict, "reentrant call rejected")

	ErrExternalCallFailed = NewErr(codeExternalCallFailed, KindExternal, "external transfer failed")
	ErrUnexpected         = NewErr(codeUnexpected, KindUnexpected, "unexpected error")
)
