// Package errors provides the structured error type shared by every layer of
// drive-api.
//
// An *Error carries a Code, a user-facing message, an optional cause and free
// form metadata. Codes survive wrapping, so a repository NotFound stays a
// NotFound after the orchestrator adds context:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrapf(err, "failed to load drive %s", id)
//	}
//
// Layer guidelines:
//
// Repository layer returns NotFound / AlreadyExists / InvalidArgument and wraps
// storage failures (which become Internal).
//
// Orchestrator layer validates input with a ValidationBuilder and reports rule
// violations (upgrade cap reached, substats full) as FailedPrecondition.
//
// Handler layer renders errors as JSON using Code.HTTPStatus and logs Internal
// errors; it never inspects messages to decide behaviour.
package errors
