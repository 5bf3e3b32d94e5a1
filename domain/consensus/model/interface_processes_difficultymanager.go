package model

// DifficultyManager provides a method to resolve the
// difficulty value of the next block
type DifficultyManager interface {
	NextDifficulty(timestamps []uint64, cumulativeDifficulties []uint64) (uint64, error)
}
