package test

import (
	"context"
	"fmt"

	"github.com/polkiloo/gophershop/internal/adapter/filestore"
	"github.com/polkiloo/gophershop/internal/adapter/mailer"
	"github.com/polkiloo/gophershop/internal/adapter/payment"
	"github.com/polkiloo/gophershop/internal/invoice"
)

// RendererStub produces a fixed byte payload instead of a real PDF.
type RendererStub struct {
	RenderFn func(invoice.Document) ([]byte, error)
	Rendered []invoice.Document
}

// Render records the document and returns the stub payload.
func (r *RendererStub) Render(doc invoice.Document) ([]byte, error) {
	r.Rendered = append(r.Rendered, doc)
	if r.RenderFn != nil {
		return r.RenderFn(doc)
	}
	return []byte("%PDF-stub"), nil
}

// FileStoreStub records uploads and returns a deterministic remote reference.
type FileStoreStub struct {
	UploadFn func(ctx context.Context, folder, name string, content []byte) (*filestore.File, error)
	Uploads  []FileStoreUpload
}

// FileStoreUpload is one recorded Upload call.
type FileStoreUpload struct {
	Folder  string
	Name    string
	Content []byte
}

// Upload records the call and returns the stub reference.
func (f *FileStoreStub) Upload(ctx context.Context, folder, name string, content []byte) (*filestore.File, error) {
	f.Uploads = append(f.Uploads, FileStoreUpload{Folder: folder, Name: name, Content: content})
	if f.UploadFn != nil {
		return f.UploadFn(ctx, folder, name, content)
	}
	return &filestore.File{
		ID:  fmt.Sprintf("%s/%s", folder, name),
		URL: fmt.Sprintf("https://files.test/%s/%s", folder, name),
	}, nil
}

// MailerStub records sent messages and can be told to fail.
type MailerStub struct {
	SendFn func(ctx context.Context, msg mailer.Message) error
	Sent   []mailer.Message
	Err    error
}

// Send records the message and returns the configured outcome.
func (m *MailerStub) Send(ctx context.Context, msg mailer.Message) error {
	if m.SendFn != nil {
		return m.SendFn(ctx, msg)
	}
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, msg)
	return nil
}

// PaymentStub records gateway calls and returns canned identifiers.
type PaymentStub struct {
	DiscountFn func(ctx context.Context, percentOff float64) (string, error)
	SessionFn  func(ctx context.Context, req payment.SessionRequest) (string, error)

	Discounts []float64
	Sessions  []payment.SessionRequest
}

// CreateDiscount records the percentage and returns a fixed id.
func (p *PaymentStub) CreateDiscount(ctx context.Context, percentOff float64) (string, error) {
	p.Discounts = append(p.Discounts, percentOff)
	if p.DiscountFn != nil {
		return p.DiscountFn(ctx, percentOff)
	}
	return "disc_1", nil
}

// CreateSession records the request and returns a fixed checkout URL.
func (p *PaymentStub) CreateSession(ctx context.Context, req payment.SessionRequest) (string, error) {
	p.Sessions = append(p.Sessions, req)
	if p.SessionFn != nil {
		return p.SessionFn(ctx, req)
	}
	return "https://checkout.test/session/1", nil
}
