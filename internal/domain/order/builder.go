package order

import (
	"errors"
	"regexp"
	"strings"

	"petshop-checkout/internal/domain/cart"
	"petshop-checkout/internal/domain/voucher"

	"github.com/shopspring/decimal"
)

var ErrValidation = errors.New("checkout form validation failed")

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidationError names the first unmet precondition. It never clears any
// checkout state.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

type Line struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// Payload is what the order service receives. It carries no promotion; the
// order service re-applies the voucher by id.
type Payload struct {
	RecipientName  string
	RecipientPhone string
	Email          string
	DeliveryType   DeliveryType
	Address        Resolution
	PaymentMethod  PaymentCode
	VoucherIDs     []int64
	Items          []Line
	Note           string
}

type Builder struct {
	store StoreAddress
}

func NewBuilder(store StoreAddress) *Builder {
	return &Builder{store: store}
}

func (b *Builder) Build(
	form Form,
	items cart.Snapshot,
	applied *voucher.Applied,
	profile Profile,
	book AddressBook,
) (*Payload, error) {
	email := form.Email
	if blank(email) {
		email = profile.Email
	}

	if err := validate(form, email, items); err != nil {
		return nil, err
	}

	paymentCode, _ := form.PaymentMethod.Code()

	recipientName, recipientPhone := form.CustomerName, form.CustomerPhone
	if form.OnBehalf {
		recipientName, recipientPhone = form.RecipientName, form.RecipientPhone
	}

	payload := &Payload{
		RecipientName:  strings.TrimSpace(recipientName),
		RecipientPhone: strings.TrimSpace(recipientPhone),
		Email:          strings.TrimSpace(email),
		DeliveryType:   form.DeliveryType,
		Address:        ResolveAddress(form, book, b.store),
		PaymentMethod:  paymentCode,
		Items:          toLines(items),
		Note:           strings.TrimSpace(form.Note),
	}
	if applied != nil {
		payload.VoucherIDs = []int64{applied.VoucherID}
	}

	return payload, nil
}

func validate(form Form, email string, items cart.Snapshot) error {
	if blank(form.CustomerName) {
		return invalid("recipientName", "recipient name is required")
	}
	if blank(form.CustomerPhone) {
		return invalid("recipientPhone", "recipient phone is required")
	}
	if blank(email) {
		return invalid("email", "email is required")
	}
	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return invalid("email", "email format is invalid")
	}
	if form.DeliveryType == DeliveryHome {
		if blank(form.Province) {
			return invalid("province", "province must be selected")
		}
		if blank(form.District) {
			return invalid("district", "district must be selected")
		}
		if blank(form.Street) {
			return invalid("street", "street address is required")
		}
	}
	if form.OnBehalf {
		if blank(form.RecipientName) {
			return invalid("onBehalfRecipientName", "name of the person receiving the order is required")
		}
		if blank(form.RecipientPhone) {
			return invalid("onBehalfRecipientPhone", "phone of the person receiving the order is required")
		}
	}
	if items.IsEmpty() {
		return invalid("cart", "cart is empty")
	}
	if !form.DeliveryType.IsValid() {
		return invalid("deliveryType", "delivery type must be home or store")
	}
	if _, ok := form.PaymentMethod.Code(); !ok {
		return invalid("paymentMethod", "payment method must be cash or bank")
	}
	return nil
}

func toLines(items cart.Snapshot) []Line {
	src := items.Items()
	lines := make([]Line, 0, len(src))
	for _, it := range src {
		lines = append(lines, Line{
			ProductID: it.ProductID(),
			Quantity:  it.Quantity(),
			UnitPrice: it.EffectiveUnitPrice(),
		})
	}
	return lines
}
