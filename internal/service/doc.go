// Package service contains the application use cases that coordinate more
// than one store or collaborator. Plain resource CRUD goes straight from the
// API layer to internal/store; account flows, which combine password
// hashing, token issuing and revocation, live here.
//
// Services receive their dependencies through constructor injection and
// depend only on store interfaces, never on a concrete datastore.
package service
