package api

import (
	"github.com/fulldump/box"

	"github.com/fulldump/usersvc/service"
)

func Build(s service.Servicer, index []byte) *box.B {

	b := box.NewBox()

	d := &Dispatcher{
		Service: s,
		Index:   index,
	}

	// Routing is done by the dispatcher, box only carries the interceptors
	b.Resource("/*").
		WithActions(
			box.AnyMethod(d.Handle).WithName("dispatch"),
		)

	return b
}
