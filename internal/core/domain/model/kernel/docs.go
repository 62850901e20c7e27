// Package kernel contains the shared value objects of the storefront domain:
// identifiers, monetary amounts, quantities, postal addresses, and email
// addresses. All types are immutable and must be created through their
// constructor functions; zero values fail Validate.
package kernel
