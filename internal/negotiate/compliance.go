package negotiate

// Compliance carries the static regulatory flags attached to every
// negotiation result. These are declarative output decoration, not
// computed logic: the engine itself performs no compliance checks.
// CrossBorderInteroperable is the only derived flag and simply mirrors
// whether the negotiation was approved.
type Compliance struct {
	EIFAligned               bool `json:"eif_aligned"`
	EIDASCompatible          bool `json:"eidas_compatible"`
	GDPRCompliant            bool `json:"gdpr_compliant"`
	OnceOnlyPrinciple        bool `json:"once_only_principle"`
	CrossBorderInteroperable bool `json:"cross_border_interoperable"`
}

func annotateCompliance(decision Decision) Compliance {
	return Compliance{
		EIFAligned:               true,
		EIDASCompatible:          true,
		GDPRCompliant:            true,
		OnceOnlyPrinciple:        true,
		CrossBorderInteroperable: decision == DecisionApproved,
	}
}
