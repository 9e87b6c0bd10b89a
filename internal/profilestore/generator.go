package profilestore

import (
	"fmt"
	"math/rand"

	"fin-circle.backend/internal/domain/entities"
)

var (
	surnames    = []string{"张", "李", "王", "赵", "陈", "刘", "周", "吴"}
	regions     = []string{"北京", "上海", "广州", "深圳", "杭州", "成都", "武汉"}
	preferences = []string{"股票", "基金", "期货", "保险", "信托", "虚拟货币", "国债"}
)

// GeneratorConfig controls the synthetic profile dataset
type GeneratorConfig struct {
	Count int
	Seed  int64
}

// DefaultGeneratorConfig mirrors the reference dataset size
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{Count: 50, Seed: 1}
}

// Generator produces a deterministic synthetic profile set for a given seed
type Generator struct {
	cfg  GeneratorConfig
	rand *rand.Rand
}

// NewGenerator returns a configured Generator instance
func NewGenerator(cfg GeneratorConfig) *Generator {
	if cfg.Count <= 0 {
		cfg.Count = DefaultGeneratorConfig().Count
	}
	return &Generator{cfg: cfg, rand: rand.New(rand.NewSource(cfg.Seed))}
}

// Generate synthesises the profile collection. Identical configs yield
// identical datasets, which keeps restarts and tests stable.
func (g *Generator) Generate() []entities.Profile {
	profiles := make([]entities.Profile, g.cfg.Count)
	for i := range profiles {
		surname := surnames[i%len(surnames)]
		gender := "男"
		given := "伟"
		if g.rand.Intn(2) == 0 {
			gender = "女"
			given = "芳"
		}
		age := 22 + g.rand.Intn(40)

		profiles[i] = entities.Profile{
			ID:           fmt.Sprintf("profile-%d", 1000+i),
			Name:         surname + "先生/女士",
			Avatar:       fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%d", i),
			Gender:       gender,
			Age:          age,
			Region:       regions[i%len(regions)],
			AnnualIncome: incomeBracketFor(age),
			Preferences: []string{
				preferences[i%len(preferences)],
				preferences[(i+2)%len(preferences)],
			},
			RiskTier: riskTierFor(i),
			Sensitive: entities.SensitiveProfile{
				RealName:    surname + given,
				Phone:       fmt.Sprintf("138%08d", g.rand.Intn(100000000)),
				ExactAssets: fmt.Sprintf("¥%.2f万", 50+g.rand.Float64()*500),
				CreditScore: 600 + g.rand.Intn(200),
			},
		}
	}
	return profiles
}

func incomeBracketFor(age int) string {
	switch {
	case age < 30:
		return "10w-30w"
	case age < 40:
		return "30w-80w"
	default:
		return "80w-200w"
	}
}

func riskTierFor(i int) entities.RiskTier {
	switch i % 3 {
	case 0:
		return entities.RiskTierHigh
	case 1:
		return entities.RiskTierMedium
	default:
		return entities.RiskTierLow
	}
}
