package service

import (
	"context"
	"errors"
	"testing"

	"orggate/internal/adapters/downstream"
	"orggate/internal/adapters/notify"
	"orggate/internal/core/identity"
	"orggate/internal/core/roleconfig"
	perrs "orggate/internal/platform/errors"
	"orggate/internal/services/accounts/domain"
)

type fakeGateway struct {
	calls int
	out   downstream.Outcome
	err   error
}

func (f *fakeGateway) CreateAccount(_ context.Context, _ downstream.CreateAccountRequest) (downstream.Outcome, error) {
	f.calls++
	return f.out, f.err
}

type fakeSender struct {
	sent []notify.Request
	err  error
}

func (f *fakeSender) Send(_ context.Context, req notify.Request) (string, error) {
	f.sent = append(f.sent, req)
	if f.err != nil {
		return "", f.err
	}
	return "n-1", nil
}

func testRoles() *roleconfig.Table {
	return roleconfig.New(nil, nil, nil, nil, roleconfig.Templates{
		ProducerConfirmation:         "tpl-producer",
		ComplianceSchemeConfirmation: "tpl-scheme",
	})
}

var testActor = identity.Actor{UserID: "7f8c3a44-9f2b-4a57-9e71-2f61f0e0a111", Email: "owner@acme.com"}

func TestCreateEmptyActorNeverCallsDownstream(t *testing.T) {
	gw := &fakeGateway{}
	s := New(gw, &fakeSender{}, testRoles())

	_, err := s.Create(context.Background(), identity.Actor{}, domain.CreateAccountInput{OrganisationName: "Acme"})
	if err == nil {
		t.Fatal("expected error")
	}
	if perrs.HTTPStatus(err) != 500 {
		t.Fatalf("expected 500-class, got %d", perrs.HTTPStatus(err))
	}
	if gw.calls != 0 {
		t.Fatalf("gateway called %d times", gw.calls)
	}

	zero := identity.Actor{UserID: "00000000-0000-0000-0000-000000000000"}
	if _, err := s.Create(context.Background(), zero, domain.CreateAccountInput{OrganisationName: "Acme"}); err == nil {
		t.Fatal("expected error for zero uuid sentinel")
	}
	if gw.calls != 0 {
		t.Fatalf("gateway called %d times", gw.calls)
	}
}

func TestCreateProducerSendsProducerTemplate(t *testing.T) {
	gw := &fakeGateway{out: downstream.Outcome{
		Status: 200,
		Body:   []byte(`{"accountId":"a1","organisationId":"o1","referenceNumber":"REF-1"}`),
	}}
	snd := &fakeSender{}
	s := New(gw, snd, testRoles())

	res, err := s.Create(context.Background(), testActor, domain.CreateAccountInput{
		OrganisationName:   "Acme",
		IsComplianceScheme: false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AccountID != "a1" || res.OrganisationID != "o1" || res.ReferenceNumber != "REF-1" {
		t.Fatalf("result = %+v", res)
	}
	if len(snd.sent) != 1 {
		t.Fatalf("sent %d notifications", len(snd.sent))
	}
	if snd.sent[0].TemplateID != "tpl-producer" {
		t.Fatalf("template = %q", snd.sent[0].TemplateID)
	}
	if snd.sent[0].Recipient != "owner@acme.com" {
		t.Fatalf("recipient = %q", snd.sent[0].Recipient)
	}
}

func TestCreateComplianceSchemeTemplate(t *testing.T) {
	gw := &fakeGateway{out: downstream.Outcome{Status: 200, Body: []byte(`{"accountId":"a1","organisationId":"o1"}`)}}
	snd := &fakeSender{}
	s := New(gw, snd, testRoles())

	if _, err := s.Create(context.Background(), testActor, domain.CreateAccountInput{
		OrganisationName:   "Scheme Co",
		IsComplianceScheme: true,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snd.sent) != 1 || snd.sent[0].TemplateID != "tpl-scheme" {
		t.Fatalf("sent = %+v", snd.sent)
	}
}

func TestCreateDownstreamFailureSkipsNotification(t *testing.T) {
	gw := &fakeGateway{out: downstream.Outcome{Status: 400, Body: []byte("bad request")}}
	snd := &fakeSender{}
	s := New(gw, snd, testRoles())

	_, err := s.Create(context.Background(), testActor, domain.CreateAccountInput{OrganisationName: "Acme"})
	if !perrs.IsCode(err, perrs.ErrorCodeValidation) {
		t.Fatalf("expected validation, got %v", err)
	}
	if len(snd.sent) != 0 {
		t.Fatalf("sent %d notifications on failure", len(snd.sent))
	}
}

func TestCreateNotificationFailureIsSwallowed(t *testing.T) {
	gw := &fakeGateway{out: downstream.Outcome{Status: 200, Body: []byte(`{"accountId":"a1","organisationId":"o1"}`)}}
	snd := &fakeSender{err: errors.New("provider down")}
	s := New(gw, snd, testRoles())

	res, err := s.Create(context.Background(), testActor, domain.CreateAccountInput{OrganisationName: "Acme"})
	if err != nil {
		t.Fatalf("primary outcome changed by notification failure: %v", err)
	}
	if res.AccountID != "a1" {
		t.Fatalf("result = %+v", res)
	}
	if len(snd.sent) != 1 {
		t.Fatalf("expected one attempted send, got %d", len(snd.sent))
	}
}

func TestCreateTransportFailure(t *testing.T) {
	gw := &fakeGateway{err: errors.New("dial tcp: connection refused")}
	s := New(gw, &fakeSender{}, testRoles())

	_, err := s.Create(context.Background(), testActor, domain.CreateAccountInput{OrganisationName: "Acme"})
	if !perrs.IsCode(err, perrs.ErrorCodeDownstream) {
		t.Fatalf("expected downstream code, got %v", perrs.CodeOf(err))
	}
}
