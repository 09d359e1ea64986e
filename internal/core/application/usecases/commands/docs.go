// Package commands contains the use cases that change the store's state.
// Every command is a validated value built by its constructor and executed by
// a matching handler that reaches the Store through ports.StoreRepository.
package commands
