package console

import (
	"catadmin/internal/catalog"
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

const (
	NoCategory    = "N/A"
	NoDescription = "No description available"
)

// ShowDetail fetches product id from the service, never from the snapshot,
// and renders it read-only.
func (c *Console) ShowDetail(ctx context.Context, id int) (Detail, error) {
	c.mu.Lock()
	c.state.SelectedID = id
	c.mu.Unlock()

	p, err := c.fetchSelected(ctx, id, MsgDetailFailed)
	if err != nil {
		return Detail{}, err
	}

	d := c.detailFor(ctx, p)
	c.render.RenderDetail(d)
	return d, nil
}

// EnableEdit re-fetches the selected product and renders it as a form.
func (c *Console) EnableEdit(ctx context.Context) (catalog.Form, error) {
	c.mu.Lock()
	id := c.state.SelectedID
	c.mu.Unlock()

	if id == 0 {
		return catalog.Form{}, ErrNoSelection
	}

	p, err := c.fetchSelected(ctx, id, MsgEditFailed)
	if err != nil {
		return catalog.Form{}, err
	}

	form := catalog.FormFromProduct(p)
	d := c.detailFor(ctx, p)
	d.Edit = &form
	c.render.RenderDetail(d)
	return form, nil
}

func (c *Console) fetchSelected(ctx context.Context, id int, failMsg string) (catalog.Product, error) {
	tok := c.details.Next()
	p, err := c.svc.Get(ctx, id)

	if !c.details.Current(tok) {
		c.log.WithFields(logrus.Fields{"token": tok, "id": id}).Debug("dropping stale product fetch")
		return catalog.Product{}, ErrStale
	}
	if err != nil {
		c.fail(failMsg, "fetching product", err)
		return catalog.Product{}, err
	}
	return p, nil
}

func (c *Console) detailFor(ctx context.Context, p catalog.Product) Detail {
	if p.Description == "" {
		p.Description = NoDescription
	}
	d := Detail{
		Product:  p,
		Images:   p.DisplayImages(),
		Category: p.CategoryName(),
	}
	if d.Category == "" {
		d.Category = NoCategory
	}
	if len(d.Images) == 0 {
		d.Images = []string{catalog.PlaceholderImage}
	}
	if c.prober != nil {
		for i, img := range d.Images {
			if img != catalog.PlaceholderImage && !c.prober.ProbeImage(ctx, img) {
				d.Images[i] = catalog.PlaceholderImage
			}
		}
	}
	return d
}

// CreateProduct validates form and posts it. The catalog is reloaded only
// after the service accepted the product.
func (c *Console) CreateProduct(ctx context.Context, form catalog.Form) (catalog.Product, error) {
	return c.submit(ctx, form, "creating product", MsgCreated, MsgCreateFailed,
		func(in catalog.ProductInput) (catalog.Product, error) {
			return c.svc.Create(ctx, in)
		})
}

// UpdateProduct validates form and replaces product id with it.
func (c *Console) UpdateProduct(ctx context.Context, id int, form catalog.Form) (catalog.Product, error) {
	return c.submit(ctx, form, "updating product", MsgUpdated, MsgUpdateFailed,
		func(in catalog.ProductInput) (catalog.Product, error) {
			return c.svc.Update(ctx, id, in)
		})
}

func (c *Console) submit(ctx context.Context, form catalog.Form, action, okMsg, failMsg string, send func(catalog.ProductInput) (catalog.Product, error)) (catalog.Product, error) {
	in, err := form.Input()
	if err != nil {
		var vErr *catalog.ValidationError
		if errors.As(err, &vErr) {
			c.log.WithField("missing", vErr.Missing).Warn(action + ": form incomplete")
			c.notify.Notify(Notice{Kind: NoticeError, Message: MsgIncompleteForm})
		}
		return catalog.Product{}, err
	}

	p, err := send(in)
	if err != nil {
		c.fail(failMsg, action, err)
		return catalog.Product{}, err
	}

	c.log.WithFields(logrus.Fields{"id": p.ID, "title": p.Title}).Info(action)
	c.notify.Notify(Notice{Kind: NoticeSuccess, Message: okMsg})
	// A failed reload reports its own notice; the mutation itself stands.
	_ = c.RefreshCatalog(ctx)
	return p, nil
}
