// Package dashboard implements the terminal view for the live CPU stream.
//
// The package uses the Bubble Tea framework (Model-Update-View). The model
// holds no business logic: it renders whatever reading the stream subscriber
// last published, or a connecting placeholder when no reading has arrived.
//
// Message flow:
//
//  1. waitForReading blocks on the subscription's update channel
//  2. readingMsg arrives and replaces the latest reading
//  3. View re-renders the status line, the readout, and the sparkline
//  4. waitForReading is re-issued for the next update
//
// Status is purely derived: "Connecting..." until the first valid reading,
// "Live" afterwards. Quitting closes the subscription, which stops any
// pending reconnect.
package dashboard
