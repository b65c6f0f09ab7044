package order

import "strings"

type DeliveryType string

const (
	DeliveryHome  DeliveryType = "home"
	DeliveryStore DeliveryType = "store"
)

func (d DeliveryType) IsValid() bool {
	return d == DeliveryHome || d == DeliveryStore
}

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentBank PaymentMethod = "bank"
)

// PaymentCode is the value the order service expects.
type PaymentCode string

const (
	PaymentCodeCOD          PaymentCode = "COD"
	PaymentCodeBankTransfer PaymentCode = "BANK_TRANSFER"
)

func (m PaymentMethod) Code() (PaymentCode, bool) {
	switch m {
	case PaymentCash:
		return PaymentCodeCOD, true
	case PaymentBank:
		return PaymentCodeBankTransfer, true
	default:
		return "", false
	}
}

// Form is the customer-facing checkout form. The address fields always hold
// what is currently shown, even when a saved address is selected.
type Form struct {
	DeliveryType      DeliveryType
	SelectedAddressID *int64
	Province          string
	District          string
	Street            string
	CustomerName      string
	CustomerPhone     string
	Email             string
	OnBehalf          bool
	RecipientName     string
	RecipientPhone    string
	PaymentMethod     PaymentMethod
	Note              string
}

type SavedAddress struct {
	ID        int64
	Province  string
	District  string
	Ward      string
	Street    string
	IsDefault bool
}

type AddressBook []SavedAddress

func (b AddressBook) Find(id int64) (SavedAddress, bool) {
	for _, a := range b {
		if a.ID == id {
			return a, true
		}
	}
	return SavedAddress{}, false
}

// Default returns the address flagged as default, else the first one.
func (b AddressBook) Default() (SavedAddress, bool) {
	for _, a := range b {
		if a.IsDefault {
			return a, true
		}
	}
	if len(b) > 0 {
		return b[0], true
	}
	return SavedAddress{}, false
}

type Profile struct {
	FullName string
	Phone    string
	Email    string
}

// DefaultForm is the state shown on first load: home delivery, cash payment,
// contact details from the profile and the default saved address copied into
// the address fields.
func DefaultForm(profile Profile, book AddressBook) Form {
	form := Form{
		DeliveryType:  DeliveryHome,
		CustomerName:  profile.FullName,
		CustomerPhone: profile.Phone,
		Email:         profile.Email,
		PaymentMethod: PaymentCash,
	}
	if addr, ok := book.Default(); ok {
		id := addr.ID
		form.SelectedAddressID = &id
		form.Province = addr.Province
		form.District = addr.District
		form.Street = addr.Street
	}
	return form
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
