package formula

// Topic names, as used in results and errors.
const (
	TopicProjectile = "projectile"
	TopicNewton     = "newton"
	TopicCoulomb    = "coulomb"
	TopicOhm        = "ohm"
	TopicCircular   = "circular"
	TopicLorentz    = "lorentz"
	TopicCapacitor  = "capacitor"
	TopicBlackbody  = "blackbody"
)
