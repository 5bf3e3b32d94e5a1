package constants

const (
	// BlockMajorVersion represents the current major version of blocks mined and the maximum
	// major version this node is able to validate
	BlockMajorVersion = 1

	// BlockMinorVersion is the minor version of blocks mined by this node
	BlockMinorVersion = 0

	// TransactionVersion is the current latest supported transaction version.
	TransactionVersion = 1

	// GenesisNonce is the nonce of every genesis block
	GenesisNonce = 70
)
