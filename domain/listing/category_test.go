package listing

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sitebid/goapi/domain"
)

type categorySuite struct {
	suite.Suite
}

func TestCategorySuite(t *testing.T) {
	suite.Run(t, new(categorySuite))
}

func (s *categorySuite) TestLabels() {
	cases := []struct {
		desc     string
		category Category
		label    string
	}{
		{desc: "ecommerce", category: CategoryEcommerce, label: "E-commerce Sites"},
		{desc: "saas", category: CategorySaas, label: "SaaS Businesses"},
		{desc: "content", category: CategoryContent, label: "Content Sites"},
		{desc: "marketplace", category: CategoryMarketplace, label: "Marketplaces"},
		{desc: "affiliate", category: CategoryAffiliate, label: "Affiliate Sites"},
		{desc: "other", category: CategoryOther, label: "Other Businesses"},
	}
	for _, c := range cases {
		s.Equal(c.label, c.category.Info().Label, c.desc)
	}
}

func (s *categorySuite) TestUnknownFallsBackToOther() {
	info := Category("crypto").Info()
	s.Equal("Other Businesses", info.Label)
}

func (s *categorySuite) TestParseCategory() {
	c, err := ParseCategory("saas")
	s.Require().NoError(err)
	s.Equal(CategorySaas, c)

	_, err = ParseCategory("SaaS")
	s.ErrorIs(err, domain.ErrInvalidCategory)

	_, err = ParseCategory("")
	s.ErrorIs(err, domain.ErrInvalidCategory)
}

func (s *categorySuite) TestCategoriesCoverConfig() {
	all := Categories()
	s.Len(all, len(categoryConfig))
	for _, c := range all {
		s.True(c.IsValid(), string(c))
	}
}
