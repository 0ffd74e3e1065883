package bandoracle

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestBandOracle(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "BandOracle Suite")
}
