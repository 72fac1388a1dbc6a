// Package user provides the account aggregate for the operations console.
// Accounts carry a role (user or admin) that drives the access scope applied
// to every order operation, and an activation status managed by admins.
package user
