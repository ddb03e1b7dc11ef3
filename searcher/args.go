package searcher

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant, UCB1's sqrt(2) squared

// Rewards are always scored from the perspective of the player the search decides for,
// in every node of the tree
const (
	Win  = 1.0
	Loss = -1.0
	Draw = 0.0
)
