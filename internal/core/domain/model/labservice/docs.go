// Package labservice contains the LabService entity and its PricingMode.
// A LabService is a lab's catalog entry for one kind of materials test; its
// pricing mode selects which creation path an order takes through the order
// state machine.
package labservice
