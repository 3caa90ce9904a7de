package main

import (
	"context"
	"log"

	"github.com/olawale021/Docappointapp/configuration"
	"github.com/olawale021/Docappointapp/controllers"
	"github.com/olawale021/Docappointapp/registration"
	"github.com/olawale021/Docappointapp/routes"
	"github.com/olawale021/Docappointapp/scheduling"
	"github.com/olawale021/Docappointapp/store"
)

func main() {
	configuration.LoadEnv()
	ctx := context.Background()

	db, err := configuration.ConfigDB(ctx)
	if err != nil {
		log.Fatal("Failed to connect to the database: ", err)
	}

	st := store.NewStore(db)
	if err := st.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create indexes: ", err)
	}

	rdb := configuration.InitRedis(ctx)

	scheduler := scheduling.NewService(st.Appointments, st.Patients, st.Doctors)
	register := registration.NewService(st.Patients, st.Doctors)

	uploadDir := configuration.Env("UPLOAD_DIR", "./uploads")
	ct := controllers.New(st, scheduler, register, rdb, uploadDir)

	r := routes.SetupRoutes(ct, rdb, uploadDir)

	port := configuration.Env("PORT", "8080")
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
