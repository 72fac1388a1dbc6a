// Package chat contains the assistant conversation aggregate: threads of
// question/answer messages owned by a user, answered by a deterministic
// keyword responder.
package chat
