// Package testing provides test utilities for aggql.
package testing

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/aggql"
	"github.com/zoobzio/dbml"
)

// TestProject creates the DBML project behind TestInstance.
// Includes orders, customers, regions and products tables. Its refs declare
// the same joins as TestDatabase, usable in either order.
func TestProject() *dbml.Project {
	project := dbml.NewProject("sales")

	// Orders table
	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("customer_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("product_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("ship_region", "varchar"))
	orders.AddColumn(dbml.NewColumn("status", "varchar"))
	orders.AddColumn(dbml.NewColumn("total", "numeric"))
	project.AddTable(orders)

	// Customers table
	customers := dbml.NewTable("customers")
	customers.AddColumn(dbml.NewColumn("id", "bigint"))
	customers.AddColumn(dbml.NewColumn("name", "varchar"))
	customers.AddColumn(dbml.NewColumn("region", "varchar").WithRef(dbml.ManyToOne, "", "regions", "code"))
	project.AddTable(customers)

	// Regions table
	regions := dbml.NewTable("regions")
	regions.AddColumn(dbml.NewColumn("code", "varchar"))
	regions.AddColumn(dbml.NewColumn("name", "varchar"))
	project.AddTable(regions)

	// Products table
	products := dbml.NewTable("products")
	products.AddColumn(dbml.NewColumn("id", "bigint"))
	products.AddColumn(dbml.NewColumn("name", "varchar"))
	products.AddColumn(dbml.NewColumn("category", "varchar"))
	project.AddTable(products)

	// Relationships
	project.AddRef(dbml.NewRef(dbml.ManyToOne).From("", "orders", "customer_id").To("", "customers", "id"))
	project.AddRef(dbml.NewRef(dbml.ManyToOne).From("", "orders", "product_id").To("", "products", "id"))
	project.AddRef(dbml.NewRef(dbml.ManyToOne).From("", "orders", "ship_region").To("", "regions", "code"))

	return project
}

// TestInstance creates a schema-validating instance over TestProject.
func TestInstance(t *testing.T) *aggql.Instance {
	t.Helper()
	instance, err := aggql.NewFromDBML(TestProject())
	if err != nil {
		t.Fatalf("Failed to create test instance: %v", err)
	}
	return instance
}

// TestDatabase returns the relationships between the TestProject tables.
//
// orders is the root. customers and products join after orders. regions joins
// after orders and customers. products declares nothing for customers or
// regions, so a query needing both fails to resolve.
func TestDatabase() aggql.Database {
	db := aggql.NewDatabase().
		AddTable("orders").
		Relate("customers", "orders", "customers.id = orders.customer_id").
		Relate("products", "orders", "products.id = orders.product_id").
		Relate("regions", "orders", "regions.code = orders.ship_region").
		Relate("regions", "customers", "regions.code = customers.region")
	return *db
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected:\n%s\nActual:\n%s", expected, actual)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertErrorIs checks that err matches target with errors.Is.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("Expected error matching %q, got: %v", target, err)
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertPanics verifies that a function panics.
func AssertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic but function completed normally")
		}
	}()
	fn()
}
