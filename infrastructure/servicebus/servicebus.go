package servicebus

import (
	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
)

// NewServiceBus creates a Service Bus client from a connection string.
func NewServiceBus(connectionString string) (*azservicebus.Client, error) {
	return azservicebus.NewClientFromConnectionString(connectionString, nil)
}
