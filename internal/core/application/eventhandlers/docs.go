// Package eventhandlers contains the reactions registered on the domain event
// dispatcher. Each handler is bound to one event name in the composition root
// and rejects events of any other type with ErrUnexpectedEvent.
//
//	dispatcher := events.NewDispatcher()
//	dispatcher.Register(customer.CustomerCreatedEventName,
//	    eventhandlers.NewLogWhenCustomerIsCreatedHandler(log))
//	dispatcher.Register(customer.CustomerAddressChangedEventName,
//	    eventhandlers.NewNotifyWhenCustomerAddressChangedHandler(notifier))
package eventhandlers
