package affect

// FromExpression maps a smoothed facial expression sample to an affect
// vector. Pure and deterministic: a fixed weighted sum per channel,
// clamped to [0,1] and rounded to two decimals.
func FromExpression(e Expression) Vector {
	anxiety := clamp01(VisAnxietyFearful*e.Fearful +
		VisAnxietySad*e.Sad +
		VisAnxietyAngry*e.Angry +
		VisAnxietyDisgusted*e.Disgusted)

	confidence := clamp01(VisConfidenceHappy*e.Happy +
		VisConfidenceNeutral*e.Neutral +
		VisConfidenceSurprised*e.Surprised +
		VisConfidenceCalm*(1-anxiety))

	tension := e.Angry + e.Disgusted
	if tension < 0 {
		tension = -tension
	}
	engagement := clamp01(VisEngagementNonNeutral*(1-e.Neutral) +
		VisEngagementHappy*e.Happy +
		VisEngagementSurprised*e.Surprised +
		VisEngagementTension*tension)

	return Vector{
		Anxiety:    round2(anxiety),
		Confidence: round2(confidence),
		Engagement: round2(engagement),
	}
}

// FromVocal maps an aggregated vocal feature sample to an affect vector.
func FromVocal(f VocalFeatures) Vector {
	anxiety := clamp01(VocAnxietyPitchVar*f.PitchVariation +
		VocAnxietyQuiet*(1-f.Volume) +
		VocAnxietyStress*f.Stress)

	confidence := clamp01(VocConfidenceSteady*(1-f.PitchVariation) +
		VocConfidenceVolume*f.Volume +
		VocConfidenceSpeaking*f.SpeakingRate)

	engagement := clamp01(VocEngagementSpeaking*f.SpeakingRate +
		VocEngagementVolume*f.Volume +
		VocEngagementPitchVar*f.PitchVariation)

	return Vector{
		Anxiety:    round2(anxiety),
		Confidence: round2(confidence),
		Engagement: round2(engagement),
	}
}
