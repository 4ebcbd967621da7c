package diagnose

import "lfp/dpalert/internal/app/domains/entity/etalert"

// Catalog 规则表接口
// 返回全部病症特征规则，顺序固定：排序打平局时按此顺序
type Catalog interface {
	Signatures() []Signature
}

// staticCatalog 内置规则表实现，进程级只读
type staticCatalog struct {
	signatures []Signature
}

// DefaultCatalog 返回内置规则表
func DefaultCatalog() Catalog {
	return defaultCatalog
}

// Signatures 返回规则列表，调用方不得修改
func (c *staticCatalog) Signatures() []Signature {
	return c.signatures
}

var defaultCatalog = &staticCatalog{
	signatures: []Signature{
		{Match: []string{"fever", "cough", "nasal discharge"}, Disease: "Pneumonia", Risk: etalert.RiskHigh, Action: "Isolate animal, call veterinarian, provide antibiotics"},
		{Match: []string{"diarrhea", "loss of appetite", "dehydration"}, Disease: "Enterotoxemia", Risk: etalert.RiskHigh, Action: "Provide fluids, call vet, maintain hygiene"},
		{Match: []string{"lameness", "swollen joints"}, Disease: "Foot and Mouth Disease", Risk: etalert.RiskMedium, Action: "Isolate animal, sanitize barn, inform vet"},
		{Match: []string{"weight loss", "diarrhea", "rough coat"}, Disease: "Worm Infestation", Risk: etalert.RiskMedium, Action: "Deworm under vet guidance, maintain pasture hygiene"},
		{Match: []string{"milk drop", "udder swelling", "fever"}, Disease: "Mastitis", Risk: etalert.RiskHigh, Action: "Milk frequently, keep udder clean, consult vet for antibiotics"},
		{Match: []string{"abortion", "retained placenta", "weak calves"}, Disease: "Brucellosis", Risk: etalert.RiskHigh, Action: "Isolate, notify vet, follow biosecurity measures"},
		{Match: []string{"bloating", "abdominal pain", "no appetite"}, Disease: "Bloat", Risk: etalert.RiskHigh, Action: "Call vet urgently, relieve gas"},
		{Match: []string{"cough", "fever", "labored breathing"}, Disease: "Respiratory Infection", Risk: etalert.RiskMedium, Action: "Provide clean air, isolate, consult vet"},
		{Match: []string{"fever", "drooling", "blisters in mouth"}, Disease: "Foot and Mouth Disease", Risk: etalert.RiskHigh, Action: "Strict isolation, notify vet, disinfect environment"},
		{Match: []string{"weakness", "pale gums", "weight loss"}, Disease: "Anemia", Risk: etalert.RiskMedium, Action: "Supplement iron/minerals, check for parasites, consult vet"},
		{Match: []string{"cough", "loss of appetite"}, Disease: "Respiratory Infection", Risk: etalert.RiskMedium, Action: "Provide clean air, isolate if needed, consult vet"},
	},
}
