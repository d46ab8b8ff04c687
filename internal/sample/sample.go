// Package sample supplies the canned demo document used to showcase the
// evaluator without real startup paperwork at hand.
package sample

const text = `Paid-Up Capital: The company has a paid-up capital of QAR 5,000,000 reported in the AoA and capitalization schedule.

Business Activity: The startup will operate a P2P lending platform (Category 2 payment service) and provide wallet services to Qatari residents.

Data Residency: Customer data is currently hosted across multiple cloud providers with primary backups in Ireland and Singapore. No explicit clause limits cross-border storage in the current hosting agreement.

Compliance: The company documents do not list a named Compliance Officer or show board-approved AML/CFT policies. AML checks are performed ad-hoc by operations.

AoA & Fit & Proper: A draft AoA exists but the founders have not signed the final version; fit-and-proper supporting documents (IDs, declarations) are incomplete.`

// Text returns the sample compliance document.
func Text() string {
	return text
}
