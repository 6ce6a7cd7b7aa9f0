package models

// FactoryKind is the set of factory contract types whose pool init code hash
// is recorded alongside the deployment.
type FactoryKind string

const (
	FactoryV2 FactoryKind = "UniswapV2Factory"
	FactoryV3 FactoryKind = "UniswapV3Factory"
)

// FactoryKindOf reports whether a contract name is a recognized factory.
func FactoryKindOf(contractName string) (FactoryKind, bool) {
	switch contractName {
	case string(FactoryV2):
		return FactoryV2, true
	case string(FactoryV3):
		return FactoryV3, true
	}
	return "", false
}
