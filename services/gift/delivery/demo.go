package delivery

import (
	"patientgift/config"
	"patientgift/domain"

	"github.com/gofiber/fiber/v2"
)

var demoPatient = domain.DemoPatient{
	ID:        "demo-001",
	FullName:  "Ivanov A.A.",
	Age:       55,
	Diagnosis: "Coronary artery disease, coronary atherosclerosis",
	Note:      "Demo mode. This is not medical information.",
}

var demoHeartInfo = domain.HeartInfoMap{
	"myocardium": {
		Title:       "Myocardium (muscle tissue)",
		Description: "The main muscle tissue of the heart that contracts and pumps blood out. The demo uses a stylised model for patient education.",
	},
	"valves": {
		Title:       "Valves",
		Description: "Valves keep blood flowing in one direction. In some conditions, such as prolapse, a valve may not close fully.",
	},
	"arteries": {
		Title:       "Arteries (coronary vessels)",
		Description: "The vessels that feed the heart muscle. In coronary heart disease blood flow can drop because the lumen narrows.",
	},
	"chambers": {
		Title:       "Heart chambers",
		Description: "The atria and ventricles fill with blood and push it out. The demo splits them virtually to explain them visually.",
	},
	"leftVentricle": {
		Title:       "Left ventricle",
		Description: "The main pumping chamber of the systemic circulation. It suffers first when coronary arteries are affected because of its high oxygen demand.",
	},
	"rightVentricle": {
		Title:       "Right ventricle",
		Description: "Pumps blood into the pulmonary circulation. Helps explain shortness of breath and right heart overload.",
	},
	"leftAtrium": {
		Title:       "Left atrium",
		Description: "Receives blood from the pulmonary veins and passes it to the left ventricle. Often mentioned with atrial fibrillation.",
	},
	"rightAtrium": {
		Title:       "Right atrium",
		Description: "Receives venous blood and passes it to the right ventricle. Helps explain venous return and load on the heart.",
	},
}

// NewDemoDelivery serves the static data behind the heart anatomy demo.
func NewDemoDelivery(app *fiber.App) {
	route := app.Group("/api")
	route.Get("/patient", func(c *fiber.Ctx) error {
		config.PrintLogInfo(nil, fiber.StatusOK, "DemoPatient")
		return c.Status(fiber.StatusOK).JSON(demoPatient)
	})
	route.Get("/heart-info", func(c *fiber.Ctx) error {
		config.PrintLogInfo(nil, fiber.StatusOK, "DemoHeartInfo")
		return c.Status(fiber.StatusOK).JSON(demoHeartInfo)
	})
}
