// Package adminsdk is a typed Go client for the client configuration admin
// API. It carries the wire types shared between the server handlers and SDK
// consumers, so the two cannot drift apart.
package adminsdk
