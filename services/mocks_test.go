package services

import (
	"context"
	"time"

	"order-gateway/models"
)

type fakeUserStore struct {
	users       []models.User
	nextID      int
	createErr   error
	lookupErr   error
	createCalls int
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return models.ErrEmailTaken
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, user := range f.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id int) (*models.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, user := range f.users {
		if user.ID == id {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindAll(_ context.Context) ([]models.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return append([]models.User{}, f.users...), nil
}

type fakeOrderStore struct {
	orders    []models.Order
	nextID    int
	createErr error
}

func (f *fakeOrderStore) Create(_ context.Context, order *models.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	order.ID = f.nextID
	order.CreatedAt = time.Now()
	f.orders = append(f.orders, *order)
	return nil
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(_ context.Context) error {
	return f.err
}
