// seed.go: demo dataset loaded once into an empty case table
package datastore

import (
	"encoding/json"
)

// DemoCases returns the fixed demo dataset. Every value is fake; the
// security answers are the comparison secrets for the challenge questions.
func DemoCases() []FraudCase {
	return []FraudCase{
		{
			HolderName:         "John",
			SecurityIdentifier: "12345",
			MaskedCard:         "**** 4242",
			Amount:             "$129.99",
			Merchant:           "ABC Industry",
			Location:           "Shanghai, China",
			OccurredAt:         "2025-11-27 14:32:00 UTC",
			Category:           "e-commerce",
			Source:             "alibaba.com",
			SecurityQuestion:   "What is the name of your first pet?",
			SecurityAnswer:     "fluffy",
			Status:             StatusPendingReview,
		},
		{
			HolderName:         "Alice",
			SecurityIdentifier: "67890",
			MaskedCard:         "**** 9876",
			Amount:             "$599.00",
			Merchant:           "TechGadgets Pro",
			Location:           "Mumbai, India",
			OccurredAt:         "2025-11-27 09:15:00 UTC",
			Category:           "electronics",
			Source:             "techgadgets.com",
			SecurityQuestion:   "In which city were you born?",
			SecurityAnswer:     "pune",
			Status:             StatusPendingReview,
		},
		{
			HolderName:         "Bob",
			SecurityIdentifier: "11223",
			MaskedCard:         "**** 1111",
			Amount:             "$1,250.00",
			Merchant:           "Luxury Fashion Store",
			Location:           "Paris, France",
			OccurredAt:         "2025-11-26 20:02:00 UTC",
			Category:           "fashion",
			Source:             "luxuryfashion.fr",
			SecurityQuestion:   "What was your high school mascot?",
			SecurityAnswer:     "tigers",
			Status:             StatusPendingReview,
		},
		{
			HolderName:         "Sarah",
			SecurityIdentifier: "44556",
			MaskedCard:         "**** 7788",
			Amount:             "$45.99",
			Merchant:           "Global Streaming Service",
			Location:           "Lagos, Nigeria",
			OccurredAt:         "2025-11-27 03:45:00 UTC",
			Category:           "subscription",
			Source:             "streamingservice.ng",
			SecurityQuestion:   "What is your mother's maiden name?",
			SecurityAnswer:     "johnson",
			Status:             StatusPendingReview,
		},
		{
			HolderName:         "Mike",
			SecurityIdentifier: "99887",
			MaskedCard:         "**** 5555",
			Amount:             "$2,499.99",
			Merchant:           "Electronics Warehouse",
			Location:           "Seoul, South Korea",
			OccurredAt:         "2025-11-27 11:20:00 UTC",
			Category:           "electronics",
			Source:             "electronicswarehouse.kr",
			SecurityQuestion:   "What was the name of your first school?",
			SecurityAnswer:     "lincoln",
			Status:             StatusPendingReview,
		},
	}
}

// SeedDemoCases inserts the demo dataset when the case table is empty.
// Idempotent: a table with any rows at all is left untouched, so restarting
// the service never duplicates or resets cases.
func SeedDemoCases(store Interface) (int, error) {
	count, err := store.CountCases()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		getLogger().Info("Case table already populated, skipping seed",
			"existing_cases", count)
		return 0, nil
	}

	cases := DemoCases()
	for i := range cases {
		// Keep the original seed payload alongside the row, like the
		// transition snapshots written later.
		if snapshot, err := json.Marshal(&cases[i]); err == nil {
			cases[i].RawJSON = string(snapshot)
		}
		if err := store.Insert(&cases[i]); err != nil {
			return i, err
		}
	}

	getLogger().Info("Seeded demo fraud cases", "count", len(cases))
	return len(cases), nil
}
