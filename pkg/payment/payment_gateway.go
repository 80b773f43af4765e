package payment

import (
	"github.com/Om136/rentals/internal/utils"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

type (
	// PaymentGateway is the external payment processor boundary. Creating a
	// transaction yields a client-side token (the "client secret") for the
	// given order id; the status check returns the processor's raw
	// transaction status.
	PaymentGateway interface {
		CreateTransaction(orderID string, grossAmount int64) (string, error)
		GetTransactionStatus(orderID string) (string, error)
	}

	midtransGateway struct {
		snapClient snap.Client
		coreClient coreapi.Client
	}
)

func NewMidtransGateway() PaymentGateway {
	serverKey := utils.GetConfig("SERVER_KEY")
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	gateway := &midtransGateway{}
	gateway.snapClient.New(serverKey, env)
	gateway.coreClient.New(serverKey, env)
	return gateway
}

func (g *midtransGateway) CreateTransaction(orderID string, grossAmount int64) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: grossAmount,
		},
	}

	resp, err := g.snapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (g *midtransGateway) GetTransactionStatus(orderID string) (string, error) {
	resp, err := g.coreClient.CheckTransaction(orderID)
	if err != nil {
		return "", err
	}
	return resp.TransactionStatus, nil
}
