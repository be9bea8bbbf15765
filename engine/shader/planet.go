// package shader implements the procedural fragment materials for the
// celestial bodies. Each material samples the shared noise fields at the
// fragment's world position and composites color layers with blend modes.
package shader

// PlanetType tags a celestial body with its material.
// The set is closed; ShadeFragment dispatches over it exhaustively.
type PlanetType int

const (
	Sun PlanetType = iota
	RockyPlanet
	Earth
	CrystalPlanet
	FirePlanet
	WaterPlanet
	CloudPlanet
	Asteroid
	Moon
)

// String returns the material name for logs and labels.
func (p PlanetType) String() string {
	switch p {
	case Sun:
		return "Sun"
	case RockyPlanet:
		return "RockyPlanet"
	case Earth:
		return "Earth"
	case CrystalPlanet:
		return "CrystalPlanet"
	case FirePlanet:
		return "FirePlanet"
	case WaterPlanet:
		return "WaterPlanet"
	case CloudPlanet:
		return "CloudPlanet"
	case Asteroid:
		return "Asteroid"
	case Moon:
		return "Moon"
	default:
		return "Unknown"
	}
}
