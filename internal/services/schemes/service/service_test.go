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
	"orggate/internal/platform/flags"
)

type fakeGateway struct {
	calls int
	out   downstream.Outcome
	err   error
}

func (f *fakeGateway) RemoveMember(_ context.Context, _, _ string) (downstream.Outcome, error) {
	f.calls++
	return f.out, f.err
}

type fakeSender struct {
	sent    []notify.Request
	failFor map[string]bool // recipient -> force failure
}

func (f *fakeSender) Send(_ context.Context, req notify.Request) (string, error) {
	f.sent = append(f.sent, req)
	if f.failFor[req.Recipient] {
		return "", errors.New("provider rejected")
	}
	return "n-1", nil
}

func testRoles() *roleconfig.Table {
	return roleconfig.New(nil, nil, map[string]string{
		"England": "shared@example.gov",
		"Wales":   "shared@example.gov",
	}, []string{"England", "Wales"}, roleconfig.Templates{
		MemberDissociationRegulator: "tpl-regulator",
		MemberDissociationProducer:  "tpl-producer-notice",
	})
}

var testActor = identity.Actor{UserID: "7f8c3a44-9f2b-4a57-9e71-2f61f0e0a111", Email: "admin@scheme.com"}

func removalBody() downstream.Outcome {
	return downstream.Outcome{Status: 200, Body: []byte(`{
		"organisationName":"Acme Packaging",
		"organisationId":"o1",
		"nations":["England","Wales"],
		"notifyRecipients":[
			{"email":"p1@acme.com","firstName":"Ada"},
			{"email":"p2@acme.com","firstName":"Bob"}
		]
	}`)}
}

func TestRemoveMemberFlagOffSendsNothing(t *testing.T) {
	gw := &fakeGateway{out: removalBody()}
	snd := &fakeSender{}
	s := New(gw, snd, testRoles(), flags.Static{})

	res, err := s.RemoveMember(context.Background(), testActor, "s1", "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OrganisationName != "Acme Packaging" {
		t.Fatalf("result = %+v", res)
	}
	if len(snd.sent) != 0 {
		t.Fatalf("sent %d notifications with flag off", len(snd.sent))
	}
}

func TestRemoveMemberFlagOnDedupesRegulator(t *testing.T) {
	gw := &fakeGateway{out: removalBody()}
	snd := &fakeSender{}
	s := New(gw, snd, testRoles(), flags.Static{FlagMemberNotify: true})

	if _, err := s.RemoveMember(context.Background(), testActor, "s1", "o1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// both nations share one regulator address: one regulator notice, two producer notices
	var regulator, producer int
	for _, req := range snd.sent {
		switch req.TemplateID {
		case "tpl-regulator":
			regulator++
			if req.Recipient != "shared@example.gov" {
				t.Fatalf("regulator recipient = %q", req.Recipient)
			}
		case "tpl-producer-notice":
			producer++
		}
	}
	if regulator != 1 {
		t.Fatalf("regulator notices = %d, want 1 (de-duplicated)", regulator)
	}
	if producer != 2 {
		t.Fatalf("producer notices = %d, want 2", producer)
	}
}

func TestRemoveMemberSendFailureDoesNotAbortSiblings(t *testing.T) {
	gw := &fakeGateway{out: removalBody()}
	snd := &fakeSender{failFor: map[string]bool{"shared@example.gov": true, "p1@acme.com": true}}
	s := New(gw, snd, testRoles(), flags.Static{FlagMemberNotify: true})

	res, err := s.RemoveMember(context.Background(), testActor, "s1", "o1")
	if err != nil {
		t.Fatalf("primary outcome changed by notification failures: %v", err)
	}
	if res.OrganisationID != "o1" {
		t.Fatalf("result = %+v", res)
	}
	// all three dispatches were still attempted
	if len(snd.sent) != 3 {
		t.Fatalf("attempted %d sends, want 3", len(snd.sent))
	}
}

func TestRemoveMemberEmptyActor(t *testing.T) {
	gw := &fakeGateway{}
	s := New(gw, &fakeSender{}, testRoles(), flags.Static{})

	if _, err := s.RemoveMember(context.Background(), identity.Actor{}, "s1", "o1"); err == nil {
		t.Fatal("expected error")
	}
	if gw.calls != 0 {
		t.Fatalf("gateway called %d times", gw.calls)
	}
}

func TestRemoveMemberMissingIDsIsValidation(t *testing.T) {
	gw := &fakeGateway{}
	s := New(gw, &fakeSender{}, testRoles(), flags.Static{})

	_, err := s.RemoveMember(context.Background(), testActor, "", "o1")
	if !perrs.IsCode(err, perrs.ErrorCodeValidation) {
		t.Fatalf("expected validation, got %v", err)
	}
	if gw.calls != 0 {
		t.Fatalf("gateway called %d times", gw.calls)
	}
}

func TestRemoveMemberClassifiesNotFound(t *testing.T) {
	gw := &fakeGateway{out: downstream.Outcome{Status: 404}}
	snd := &fakeSender{}
	s := New(gw, snd, testRoles(), flags.Static{FlagMemberNotify: true})

	_, err := s.RemoveMember(context.Background(), testActor, "s1", "o1")
	if !perrs.IsCode(err, perrs.ErrorCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(snd.sent) != 0 {
		t.Fatalf("sent %d notifications on failure", len(snd.sent))
	}
}
