package rating

import "errors"

var (
	// ErrUnknownParticipant means a result references a player that is not
	// in the loaded snapshot. The run cannot continue.
	ErrUnknownParticipant = errors.New("result references a player missing from the snapshot")

	// ErrUnclassifiedDelta means a rating delta fell outside every
	// competitiveness band, which only happens on corrupt input (NaN).
	ErrUnclassifiedDelta = errors.New("rating delta matches no competitiveness band")

	// ErrUnknownMatchFormat means a match format has no configured
	// reliability.
	ErrUnknownMatchFormat = errors.New("unsupported match format")

	// ErrCompletedSetsOutOfRange means a DNF result reported a completed
	// set count outside 0..4.
	ErrCompletedSetsOutOfRange = errors.New("completed set count out of range")

	// ErrTeamMapping means a doubles participant could not be placed on
	// either team of a result.
	ErrTeamMapping = errors.New("could not map player to team")

	// ErrGenderType means a doubles result's gender type could not be
	// derived from its participants.
	ErrGenderType = errors.New("unable to determine result gender type")
)
