// Package customer contains the customer aggregate. The admin console only
// needs the contact snapshot (name, email, phone) to expand the userId field
// in order listings; account management itself is an external collaborator.
package customer
