package generate

import (
	"fmt"
	"strings"

	"github.com/fieldforge/fieldforge/internal/domain"
	"github.com/fieldforge/fieldforge/internal/sample"
)

// Fabricators for identity-ish strings. These compose pool values with
// formatted digits; none of them promise uniqueness, matching how messy a
// real operational export looks.

func personName(s *sample.Sampler) (first, last string) {
	return sample.Pick(s, domain.FirstNames), sample.Pick(s, domain.LastNames)
}

func companyName(s *sample.Sampler) string {
	return sample.Pick(s, domain.CompanyCores) + " " + sample.Pick(s, domain.CompanySuffixes)
}

// phone numbers use the reserved 555 exchange so no generated number can
// reach a real subscriber.
func phone(s *sample.Sampler) string {
	return fmt.Sprintf("(%d) 555-%s", s.Int(201, 989), s.Digits(4))
}

func email(s *sample.Sampler, first, last string) string {
	domainName := sample.Pick(s, domain.EmailDomains)
	first = strings.ToLower(first)
	last = strings.ToLower(last)
	if last == "" {
		return fmt.Sprintf("%s%d@%s", first, s.Int(1, 999), domainName)
	}
	return fmt.Sprintf("%s.%s%d@%s", first, last, s.Int(1, 999), domainName)
}

func address(s *sample.Sampler) string {
	return fmt.Sprintf("%d %s, %s, %s %05d",
		s.Int(10, 9899),
		sample.Pick(s, domain.StreetNames),
		sample.Pick(s, domain.Cities),
		sample.Pick(s, domain.States),
		s.Int(10000, 99999))
}

func equipmentModel(s *sample.Sampler) string {
	return fmt.Sprintf("%s%d", sample.Pick(s, domain.ModelPrefixes), s.Int(100, 999))
}

func partName(s *sample.Sampler, category string) string {
	return category + " - " + sample.Pick(s, domain.PartDescriptors)
}

func serialNumber(s *sample.Sampler) string {
	return fmt.Sprintf("%s%s-%s-%s", s.UpperLetters(2), s.Digits(2), s.Digits(4), s.Digits(4))
}

func licensePlate(s *sample.Sampler) string {
	return fmt.Sprintf("%s-%s", s.UpperLetters(3), s.Digits(4))
}

func vin(s *sample.Sampler) string {
	var b strings.Builder
	// letter/digit layout of a plausible North American VIN
	for _, c := range "LDLDDLDDLDL" {
		if c == 'L' {
			b.WriteString(s.UpperLetters(1))
		} else {
			b.WriteString(s.Digits(1))
		}
	}
	b.WriteString(s.Digits(6))
	return b.String()
}

func transactionID(s *sample.Sampler) string {
	return "TXN-" + s.Digits(8)
}

func warehouseSlot(s *sample.Sampler) string {
	return fmt.Sprintf("%s-%02d-%d",
		sample.Pick(s, domain.WarehouseAisles), s.Int(1, 20), s.Int(1, 10))
}

func salesRep(s *sample.Sampler) string {
	return fmt.Sprintf("Sales Rep %d", s.Int(1, 5))
}

// sentence draws one phrase; narrative draws two distinct phrases and joins
// them, for the longer free-text columns.
func sentence(s *sample.Sampler, pool []string) string {
	return sample.Pick(s, pool)
}

func narrative(s *sample.Sampler, pool []string) string {
	first := s.Index(len(pool))
	second := s.Index(len(pool))
	if second == first {
		second = (second + 1) % len(pool)
	}
	return pool[first] + ". " + pool[second] + "."
}

// maybe returns the value only half the time, for optional columns.
func maybe(s *sample.Sampler, value string) string {
	if s.Bool() {
		return value
	}
	return ""
}
