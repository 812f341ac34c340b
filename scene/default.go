package scene

// Default returns the five-scene Life Compass script.
func Default() []Descriptor {
	return []Descriptor{
		{
			ID:          1,
			DurationMs:  2000,
			Caption:     "كلنا نضيع أحيانًا…",
			Description: "خلفية داكنة مع إضاءة بسيطة تتحرك",
			Variant:     VariantParticles,
		},
		{
			ID:          2,
			DurationMs:  2000,
			Caption:     "لكن دائمًا هناك بوصلة تعيدنا للطريق الصحيح.",
			Description: "شخص يقف أمام طريق متشعب",
			Variant:     VariantForkedPath,
		},
		{
			ID:          3,
			DurationMs:  3000,
			Caption:     "بوصلة الحياة…",
			Description: "ضوء يتجمع ليشكل بوصلة متوهجة",
			Variant:     VariantCompassReveal,
		},
		{
			ID:          4,
			DurationMs:  3000,
			Caption:     "7 خطوات تعيد توازنك وتفتح لك باب الازدهار.",
			Description: "ظهور غلاف الكتاب",
			Variant:     VariantBookReveal,
		},
		{
			ID:          5,
			DurationMs:  3000,
			Caption:     "رحلة تغيير حقيقية… تبدأ الآن.",
			Description: "شخص يكتب، يتأمل، أو يعمل بثقة",
			Variant:     VariantConfidenceIcon,
		},
	}
}

// MustDefault returns the default script as a validated List.
func MustDefault() List {
	l, err := NewList(Default())
	if err != nil {
		panic(err)
	}
	return l
}
