package domain

// Declared sampling skews. Keeping the weights here, next to the pools they
// shape, means a reviewer can audit the business realism of the dataset
// without reading any generator code.

// ServiceTypeWeights parallels ServiceTypes: routine maintenance and repair
// dominate the call volume, emergencies are the rarest.
var ServiceTypeWeights = []float64{30, 30, 15, 15, 10}

// ServiceTypeWeight returns the draw weight for one service type.
func ServiceTypeWeight(serviceType string) float64 {
	for i, t := range ServiceTypes {
		if t == serviceType {
			return ServiceTypeWeights[i]
		}
	}
	return 0
}

// TechnicianLevelWeight returns the assignment weight of a technician level
// for a given service type. Installations and emergencies skew hard toward
// senior staff; routine work is assigned uniformly.
func TechnicianLevelWeight(level, serviceType string) float64 {
	if serviceType != ServiceInstallation && serviceType != ServiceEmergency {
		return 1
	}
	switch level {
	case LevelJunior:
		return 1
	case LevelSenior:
		return 3
	case LevelLead:
		return 4
	case LevelSpecialist:
		return 5
	}
	return 0
}

// LevelBaseSkill returns the competency score a level clusters around.
// Individual skills vary by up to two points in either direction and are
// clamped to the 1..10 scale.
func LevelBaseSkill(level string) int {
	switch level {
	case LevelJunior:
		return 3
	case LevelSenior:
		return 6
	case LevelLead:
		return 8
	case LevelSpecialist:
		return 9
	}
	return 0
}

// LevelRateBand returns the inclusive hourly-rate range, in whole dollars,
// for a technician level. Bands overlap at the edges the way real pay scales
// do, but a specialist never bills less than a junior.
func LevelRateBand(level string) (lo, hi int) {
	switch level {
	case LevelJunior:
		return 25, 40
	case LevelSenior:
		return 38, 55
	case LevelLead:
		return 50, 65
	case LevelSpecialist:
		return 60, 75
	}
	return 0, 0
}
