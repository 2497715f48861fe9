package memory_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/store"
	"taskflow.app/server/internal/store/memory"
)

var _ = Describe("UserStore", func() {
	var (
		ctx    context.Context
		stores *memory.Stores
		users  store.UserStore
	)

	BeforeEach(func() {
		ctx = context.Background()
		stores = memory.NewStores(memory.NewDB())
		users = stores.Users()
	})

	It("keeps per-type id sequences independent", func() {
		u := &model.User{Username: "alice", DisplayName: "Alice", Role: model.RoleUser}
		Expect(users.Create(ctx, u)).To(Succeed())

		w := &model.Workspace{Name: "General"}
		Expect(stores.Workspaces().Create(ctx, w)).To(Succeed())

		Expect(u.ID).To(Equal(int64(1)))
		Expect(w.ID).To(Equal(int64(1)))
	})

	It("looks up users by username", func() {
		u := &model.User{Username: "bob", DisplayName: "Bob", Role: model.RoleAdmin}
		Expect(users.Create(ctx, u)).To(Succeed())

		got, err := users.GetByUsername(ctx, "bob")
		Expect(err).NotTo(HaveOccurred())
		Expect(got.ID).To(Equal(u.ID))

		_, err = users.GetByUsername(ctx, "nobody")
		Expect(err).To(MatchError(store.ErrNotFound))
	})

	It("lists only admins in ListAdmins, id order", func() {
		Expect(users.Create(ctx, &model.User{Username: "a", Role: model.RoleAdmin})).To(Succeed())
		Expect(users.Create(ctx, &model.User{Username: "b", Role: model.RoleUser})).To(Succeed())
		Expect(users.Create(ctx, &model.User{Username: "c", Role: model.RoleAdmin})).To(Succeed())

		admins, err := users.ListAdmins(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(admins).To(HaveLen(2))
		Expect(admins[0].Username).To(Equal("a"))
		Expect(admins[1].Username).To(Equal("c"))
	})
})
