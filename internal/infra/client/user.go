package client

import (
	"context"
	"net/http"

	"petshop-checkout/internal/domain/order"
)

type profileDTO struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type savedAddressDTO struct {
	ID        int64  `json:"id"`
	Province  string `json:"province"`
	District  string `json:"district"`
	Ward      string `json:"ward"`
	Street    string `json:"street"`
	IsDefault bool   `json:"is_default"`
}

type UserClient struct {
	c *Client
}

func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

func (uc *UserClient) FetchUserProfile(ctx context.Context) (order.Profile, error) {
	var body profileDTO
	if err := uc.get(ctx, "/api/users/me", &body); err != nil {
		return order.Profile{}, err
	}
	return order.Profile{FullName: body.FullName, Phone: body.Phone, Email: body.Email}, nil
}

func (uc *UserClient) FetchUserAddresses(ctx context.Context) (order.AddressBook, error) {
	var body []savedAddressDTO
	if err := uc.get(ctx, "/api/users/me/addresses", &body); err != nil {
		return nil, err
	}
	book := make(order.AddressBook, 0, len(body))
	for _, a := range body {
		book = append(book, order.SavedAddress{
			ID:        a.ID,
			Province:  a.Province,
			District:  a.District,
			Ward:      a.Ward,
			Street:    a.Street,
			IsDefault: a.IsDefault,
		})
	}
	return book, nil
}

func (uc *UserClient) get(ctx context.Context, path string, v any) error {
	resp, err := uc.c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer closeBody(resp)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return order.ErrAuthRequired
	default:
		return unexpectedStatus(uc.c.Name, resp)
	}

	_, err = decodeJSON(resp, v)
	return err
}
