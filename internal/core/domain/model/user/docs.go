// Package user provides the User aggregate and its role and account-status
// value objects for the delivery marketplace.
//
// A User covers all three marketplace roles. The role determines what the
// user may do (decided by the authorization policy); the account status
// determines whether the user may act at all — only active accounts
// authenticate. Driver-role users must carry vehicle and license
// identifiers, and may report their geographic position during deliveries.
package user
