package order

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"bookstore/internal/entities"
)

type Service struct {
	repository   Repository
	customers    CustomerDirectory
	catalog      CatalogLookup
	lifecycle    Lifecycle
	paymentLimit decimal.Decimal
	txManager    TxManager
	events       EventSink
}

func New(
	repository Repository,
	customers CustomerDirectory,
	catalog CatalogLookup,
	lifecycle Lifecycle,
	paymentLimit decimal.Decimal,
	txManager TxManager,
	events EventSink,
) *Service {
	return &Service{
		repository:   repository,
		customers:    customers,
		catalog:      catalog,
		lifecycle:    lifecycle,
		paymentLimit: paymentLimit,
		txManager:    txManager,
		events:       events,
	}
}

// PlaceOrder оформляет заказ: цены берутся из каталога на момент
// оформления, сумма проверяется против карты покупателя. Заказ либо
// появляется целиком в статусе accepted, либо не появляется вовсе.
func (s *Service) PlaceOrder(ctx context.Context, customerNr int64, items []entities.NewOrderItem) (*entities.Order, error) {
	if len(items) == 0 {
		return nil, ErrInvalidOrder
	}

	customer, err := s.customers.GetByNr(ctx, customerNr)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}

	orderItems := make([]entities.OrderItem, 0, len(items))
	for _, item := range items {
		if !isValidQuantity(item.Quantity) {
			return nil, ErrInvalidOrder
		}

		book, err := s.catalog.GetByNr(ctx, item.BookNr)
		if err != nil {
			return nil, fmt.Errorf("find book %d: %w", item.BookNr, err)
		}

		orderItems = append(orderItems, entities.OrderItem{
			Quantity: item.Quantity,
			BookNr:   book.Nr,
			Price:    book.Price,
		})
	}

	amount, err := computeAmount(orderItems)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := validatePayment(customer.Card, amount, s.paymentLimit, now); err != nil {
		return nil, err
	}

	newOrder := entities.Order{
		Version:    1,
		CustomerNr: customer.Nr,
		Items:      orderItems,
		Amount:     amount,
		Status:     entities.OrderAccepted,
		CreatedAt:  now,
	}

	var created *entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err = s.repository.Create(ctx, newOrder)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishStatusChange(ctx, *created)
	return created, nil
}

// CancelOrder переводит заказ в canceled. Проверка истекшего окна
// отгрузки и смена статуса идут в одной транзакции, поэтому отмена и
// фоновая отгрузка не могут выиграть одновременно.
func (s *Service) CancelOrder(ctx context.Context, orderNr int64) error {
	var canceled entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := s.repository.GetByNr(ctx, orderNr)
		if err != nil {
			return err
		}

		if err := s.lifecycle.CanCancel(orderEntity, time.Now().UTC()); err != nil {
			return err
		}

		err = s.repository.UpdateStatus(ctx, orderEntity.Nr, entities.OrderAccepted, entities.OrderCanceled, orderEntity.Version)
		if err != nil {
			return err
		}

		canceled = *orderEntity
		canceled.Status = entities.OrderCanceled
		canceled.Version = orderEntity.Version + 1
		return nil
	})
	if err != nil {
		return err
	}

	s.publishStatusChange(ctx, canceled)
	return nil
}

func (s *Service) FindOrder(ctx context.Context, orderNr int64) (*entities.Order, error) {
	orderEntity, err := s.repository.GetByNr(ctx, orderNr)
	if err != nil {
		return nil, err
	}
	return orderEntity, nil
}

// RemoveOrder удаляет заказ безвозвратно, из любого статуса.
func (s *Service) RemoveOrder(ctx context.Context, orderNr int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repository.Delete(ctx, orderNr)
	})
}

// SearchOrders возвращает заказы покупателя за календарный год.
// Пустой результат — не ошибка.
func (s *Service) SearchOrders(ctx context.Context, customerNr int64, year int) ([]entities.OrderInfo, error) {
	infos, err := s.repository.SearchByCustomerAndYear(ctx, customerNr, year)
	if err != nil {
		return nil, fmt.Errorf("search orders: %w", err)
	}
	return infos, nil
}

// DispatchDueOrders фиксирует accepted -> shipped для заказов с истекшим
// окном отгрузки и публикует событие по каждому отгруженному заказу.
// Вызывается фоновой задачей.
func (s *Service) DispatchDueOrders(ctx context.Context) (int64, error) {
	shipped, err := s.repository.UpdateOrdersShippedWhereDispatchDue(ctx, s.lifecycle.DispatchDelay())
	if err != nil {
		return 0, fmt.Errorf("dispatch due orders: %w", err)
	}

	for _, orderEntity := range shipped {
		s.publishStatusChange(ctx, orderEntity)
	}

	return int64(len(shipped)), nil
}

func (s *Service) publishStatusChange(ctx context.Context, orderEntity entities.Order) {
	if s.events == nil {
		return
	}
	s.events.OrderStatusChanged(ctx, orderEntity)
}
