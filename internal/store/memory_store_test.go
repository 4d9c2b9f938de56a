package store

import (
	"errors"
	"testing"
	"time"

	"craftlink/pkg/domain"
)

func testCustomer(email string) domain.Customer {
	return domain.Customer{
		Name:      "Test Customer",
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
}

func testCraftsman(email string) domain.Craftsman {
	now := time.Now().UTC()
	return domain.Craftsman{
		Name:        "Test Craftsman",
		Email:       email,
		Phone:       "0600-000-000",
		ServiceType: "plumbing",
		Location:    "Casablanca",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestEmailUniqueAcrossKinds(t *testing.T) {
	t.Run("customer first", func(t *testing.T) {
		m := NewMemoryStore()
		if _, err := m.CreateCustomer(testCustomer("dup@x.com")); err != nil {
			t.Fatalf("create customer: %v", err)
		}
		if _, err := m.CreateCraftsman(testCraftsman("dup@x.com")); !errors.Is(err, ErrEmailExists) {
			t.Fatalf("err = %v, want ErrEmailExists", err)
		}
	})
	t.Run("craftsman first", func(t *testing.T) {
		m := NewMemoryStore()
		if _, err := m.CreateCraftsman(testCraftsman("dup@x.com")); err != nil {
			t.Fatalf("create craftsman: %v", err)
		}
		if _, err := m.CreateCustomer(testCustomer("dup@x.com")); !errors.Is(err, ErrEmailExists) {
			t.Fatalf("err = %v, want ErrEmailExists", err)
		}
	})
}

func TestHasEmailProbesBothKinds(t *testing.T) {
	m := NewMemoryStore()
	if _, err := m.CreateCustomer(testCustomer("cust@x.com")); err != nil {
		t.Fatalf("create customer: %v", err)
	}
	if _, err := m.CreateCraftsman(testCraftsman("craft@x.com")); err != nil {
		t.Fatalf("create craftsman: %v", err)
	}
	for _, email := range []string{"cust@x.com", "craft@x.com"} {
		ok, err := m.HasEmail(email)
		if err != nil || !ok {
			t.Fatalf("HasEmail(%q) = %v, %v, want true", email, ok, err)
		}
	}
	ok, err := m.HasEmail("nobody@x.com")
	if err != nil || ok {
		t.Fatalf("HasEmail(unknown) = %v, %v, want false", ok, err)
	}
}

func TestGetAccountByEmailTagsRole(t *testing.T) {
	m := NewMemoryStore()
	customer, err := m.CreateCustomer(testCustomer("cust@x.com"))
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	craftsman, err := m.CreateCraftsman(testCraftsman("craft@x.com"))
	if err != nil {
		t.Fatalf("create craftsman: %v", err)
	}

	account, found, err := m.GetAccountByEmail("cust@x.com")
	if err != nil || !found {
		t.Fatalf("GetAccountByEmail(customer) = %v, %v", found, err)
	}
	if account.Role != domain.RoleCustomer || account.Customer == nil || account.Craftsman != nil {
		t.Fatalf("account = %+v, want customer-tagged", account)
	}
	if account.SubjectID() != customer.ID {
		t.Fatalf("SubjectID = %d, want %d", account.SubjectID(), customer.ID)
	}

	account, found, err = m.GetAccountByEmail("craft@x.com")
	if err != nil || !found {
		t.Fatalf("GetAccountByEmail(craftsman) = %v, %v", found, err)
	}
	if account.Role != domain.RoleCraftsman || account.Craftsman == nil {
		t.Fatalf("account = %+v, want craftsman-tagged", account)
	}
	if account.SubjectID() != craftsman.ID {
		t.Fatalf("SubjectID = %d, want %d", account.SubjectID(), craftsman.ID)
	}

	if _, found, err := m.GetAccountByEmail("nobody@x.com"); err != nil || found {
		t.Fatalf("GetAccountByEmail(unknown) = %v, %v, want not found", found, err)
	}
}

func TestAttachmentsKeepInsertionOrder(t *testing.T) {
	m := NewMemoryStore()
	created, err := m.CreateCraftsman(testCraftsman("order@x.com"))
	if err != nil {
		t.Fatalf("create craftsman: %v", err)
	}

	for _, name := range []string{"first", "second", "third"} {
		if _, err := m.AddService(domain.CraftsmanService{CraftsmanID: created.ID, ServiceName: name}); err != nil {
			t.Fatalf("add service %s: %v", name, err)
		}
	}
	for _, title := range []string{"p1", "p2"} {
		if _, err := m.AddPortfolioItem(domain.PortfolioItem{CraftsmanID: created.ID, Title: title}); err != nil {
			t.Fatalf("add portfolio %s: %v", title, err)
		}
	}
	if _, err := m.AddReview(domain.Review{CraftsmanID: created.ID, CustomerName: "R", Rating: 5}); err != nil {
		t.Fatalf("add review: %v", err)
	}

	att, err := m.GetCraftsmanAttachments(created.ID)
	if err != nil {
		t.Fatalf("attachments: %v", err)
	}
	if len(att.Services) != 3 || att.Services[0].ServiceName != "first" || att.Services[2].ServiceName != "third" {
		t.Fatalf("services out of order: %+v", att.Services)
	}
	if len(att.Portfolio) != 2 || att.Portfolio[0].Title != "p1" {
		t.Fatalf("portfolio out of order: %+v", att.Portfolio)
	}
	if len(att.Reviews) != 1 || att.Reviews[0].Rating != 5 {
		t.Fatalf("unexpected reviews: %+v", att.Reviews)
	}
}

func TestAttachmentsEmptyNotNil(t *testing.T) {
	m := NewMemoryStore()
	created, err := m.CreateCraftsman(testCraftsman("empty@x.com"))
	if err != nil {
		t.Fatalf("create craftsman: %v", err)
	}
	att, err := m.GetCraftsmanAttachments(created.ID)
	if err != nil {
		t.Fatalf("attachments: %v", err)
	}
	if att.Services == nil || att.Portfolio == nil || att.Reviews == nil {
		t.Fatal("attachment slices must be empty, not nil, so they serialize as []")
	}
}

func TestListCraftsmenFilters(t *testing.T) {
	m := NewMemoryStore()
	plumber := testCraftsman("a@x.com")
	plumber.ServiceType = "plumbing"
	plumber.Location = "Casablanca - Maarif"
	electrician := testCraftsman("b@x.com")
	electrician.ServiceType = "electrical"
	electrician.Location = "Rabat - Agdal"
	carpenter := testCraftsman("c@x.com")
	carpenter.ServiceType = "carpentry"
	carpenter.Location = "Casablanca - Ain Sebaa"
	for _, c := range []domain.Craftsman{plumber, electrician, carpenter} {
		if _, err := m.CreateCraftsman(c); err != nil {
			t.Fatalf("create %s: %v", c.Email, err)
		}
	}

	all, err := m.ListCraftsmen(CraftsmanFilter{})
	if err != nil || len(all) != 3 {
		t.Fatalf("ListCraftsmen(all) = %d, %v, want 3", len(all), err)
	}
	if all[0].Email != "a@x.com" || all[2].Email != "c@x.com" {
		t.Fatalf("list out of insertion order: %+v", all)
	}

	byType, err := m.ListCraftsmen(CraftsmanFilter{ServiceType: "electrical"})
	if err != nil || len(byType) != 1 || byType[0].Email != "b@x.com" {
		t.Fatalf("filter by service_type = %+v, %v", byType, err)
	}

	byLocation, err := m.ListCraftsmen(CraftsmanFilter{Location: "Casablanca"})
	if err != nil || len(byLocation) != 2 {
		t.Fatalf("filter by location = %d, %v, want 2", len(byLocation), err)
	}
}

func TestDeleteCraftsmanCascades(t *testing.T) {
	m := NewMemoryStore()
	created, err := m.CreateCraftsman(testCraftsman("gone@x.com"))
	if err != nil {
		t.Fatalf("create craftsman: %v", err)
	}
	if _, err := m.AddService(domain.CraftsmanService{CraftsmanID: created.ID, ServiceName: "svc"}); err != nil {
		t.Fatalf("add service: %v", err)
	}
	if _, err := m.AddReview(domain.Review{CraftsmanID: created.ID, CustomerName: "R", Rating: 4}); err != nil {
		t.Fatalf("add review: %v", err)
	}

	if err := m.DeleteCraftsman(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found, _ := m.GetCraftsmanByID(created.ID); found {
		t.Fatal("craftsman still present after delete")
	}
	att, err := m.GetCraftsmanAttachments(created.ID)
	if err != nil {
		t.Fatalf("attachments: %v", err)
	}
	if len(att.Services) != 0 || len(att.Reviews) != 0 {
		t.Fatalf("attachments survived cascade: %+v", att)
	}
	count, err := m.CraftsmanCount()
	if err != nil || count != 0 {
		t.Fatalf("count = %d, %v, want 0", count, err)
	}
	// the freed email can be registered again
	if _, err := m.CreateCustomer(testCustomer("gone@x.com")); err != nil {
		t.Fatalf("re-register freed email: %v", err)
	}
}

func TestLookupsByEmailAndID(t *testing.T) {
	m := NewMemoryStore()
	customer, err := m.CreateCustomer(testCustomer("look@x.com"))
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	byEmail, found, err := m.GetCustomerByEmail("look@x.com")
	if err != nil || !found || byEmail.ID != customer.ID {
		t.Fatalf("GetCustomerByEmail = %+v, %v, %v", byEmail, found, err)
	}
	byID, found, err := m.GetCustomerByID(customer.ID)
	if err != nil || !found || byID.Email != "look@x.com" {
		t.Fatalf("GetCustomerByID = %+v, %v, %v", byID, found, err)
	}
	if _, found, _ := m.GetCustomerByID(9999); found {
		t.Fatal("unexpected customer for unknown id")
	}
}
